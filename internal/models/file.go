package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Accepted file types.
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// RootParent is the sentinel parent id for entries at the top of the tree.
const RootParent = "0"

// File is a stored entry: a folder grouping other entries, or a regular
// file/image whose bytes live at LocalPath on disk. LocalPath is a server
// detail and is never serialized to clients.
type File struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Type      string             `bson:"type" json:"type"`
	IsPublic  bool               `bson:"is_public" json:"isPublic"`
	ParentID  string             `bson:"parent_id" json:"parentId"`
	LocalPath string             `bson:"local_path,omitempty" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// ValidType reports whether t is one of the accepted file types.
func ValidType(t string) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}

// IsRootParent reports whether p addresses the tree root.
func IsRootParent(p string) bool {
	return p == "" || p == RootParent
}
