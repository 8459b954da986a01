package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnfiledFolderID is the well-known ID of the system "Unfiled" folder.
// It is created at startup and cannot be deleted.
var UnfiledFolderID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

const (
	UnfiledFolderName  = "Unfiled"
	UnfiledFolderColor = "#8E8E93"

	// MaxFolderDepth limits folder nesting (root = depth 0).
	MaxFolderDepth = 3
)

// Folder groups terms. Folders form a tree capped at MaxFolderDepth levels.
type Folder struct {
	ID        uuid.UUID
	Name      string
	IconName  string
	ColorHex  string
	IsSystem  bool
	SortOrder int
	ParentID  *uuid.UUID
	CreatedAt time.Time
}

// FolderColors is the palette offered by the client when creating folders.
var FolderColors = []string{
	"#6B7B8D", // gray-blue
	"#4A7FBD", // muted blue
	"#C75450", // muted red
	"#D4864A", // muted orange
	"#C4A94D", // muted gold
	"#5A9E6F", // muted green
	"#7B6BA5", // muted purple
	"#9B6BB5", // muted violet
	"#C74E6E", // muted rose
	"#4EA8A2", // muted teal
}
