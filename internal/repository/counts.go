package repository

import (
	"context"

	"gorm.io/gorm"
)

type idCount struct {
	ID string
	N  int64
}

// countBy returns COUNT(*) of model rows grouped by column, restricted to ids.
// Ids with no rows are absent from the map and read as zero.
func countBy(ctx context.Context, db *gorm.DB, model interface{}, column string, ids []string) (map[string]int64, error) {
	out := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []idCount
	err := db.WithContext(ctx).Model(model).
		Select(column+" AS id, COUNT(*) AS n").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.ID] = row.N
	}
	return out, nil
}

const newestFirst = "created_at DESC, id DESC"
