// Package repositories implements SQLite persistence for authors, magazines and articles.
//
// [New] builds one [Repositories] value around a database handle. Its three repositories share a registry that owns
// the handle, the configured rules, and one identity cache per entity type, so that every lookup of a given row returns
// the same live instance until that row is deleted.
//
// Key Implementations:
//   - [AuthorRepository] : author CRUD plus articles, magazines and topic areas per author
//   - [MagazineRepository] : magazine CRUD plus articles, authors and contributing authors per magazine
//   - [ArticleRepository] : article CRUD with reference checks, plus each article's author and magazine
//
// Relationship methods query on every call and return fresh slices; nothing is loaded lazily.
// The repositories are not safe for concurrent use.
package repositories
