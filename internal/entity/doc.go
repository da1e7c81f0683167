// Package entity classifies filesystem paths into typed entities and
// exposes a uniform API over them.
//
// A Registry holds the ordered candidate kinds. Resolve tries every
// candidate whose extension hints match the path first, then the rest,
// then Directory, and finally falls back to a plain File. Extension hints
// only change the order; content validation decides the kind.
//
// Every entity embeds *File, which carries the path identity, natural
// ordering, content comparison and checksums.
package entity
