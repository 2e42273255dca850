package cli

import (
	"log/slog"

	"github.com/iw2rmb/rubytype/codetable"
)

// loadTable loads the configured code table. A table that cannot be read
// completely is logged; whatever was parsed is still used.
func (o *RootOptions) loadTable(logger *slog.Logger) (*codetable.Table, error) {
	path := o.Config.Table.Path
	table, err := codetable.Load(path)
	if err != nil {
		logger.Warn("code table incomplete", "path", path, "entries", table.Len(), "err", err)
		return table, err
	}
	logger.Debug("code table loaded", "path", path, "entries", table.Len())
	return table, nil
}
