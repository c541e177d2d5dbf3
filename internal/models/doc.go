// Package models defines the magazine publishing entities and their persistence interfaces.
//
//   - [Author] : a writer, referenced by articles
//   - [Magazine] : a publication with a category
//   - [Article] : a piece written by one author for one magazine
//
// Constructors and setters validate immediately and never touch the database.
// Field type problems are reported as [shared.ErrInvalidType], bad values as [shared.ErrInvalidValue].
// IDs are bound once, when a repository first persists the entity, and cleared on delete.
package models
