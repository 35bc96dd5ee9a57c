// Package models contains the GORM persistence models.
//
// Persistence models are kept separate from the domain entities so the
// domain layer stays free of ORM tags and database concerns. Each model
// provides ToDomain/FromDomain conversions.
package models
