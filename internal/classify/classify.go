package classify

import (
	"github.com/fileorg/file-organizer/internal/model"
)

// FolderFor returns the destination folder name for a file. In type mode the
// folder is the table category for the file's extension; in name mode every
// file gets a folder named after its stem, so files sharing a stem land
// together. Total for any input, never errors.
func FolderFor(entry model.FileEntry, mode model.Mode, table *Table) string {
	if mode == model.ModeByName {
		return entry.Stem
	}
	return table.Category(entry.Ext)
}
