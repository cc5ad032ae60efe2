package queries

import (
	"context"

	"freight/internal/core/domain/model/load"

	"gorm.io/gorm"
)

type LoadsByStatusQueryHandler struct {
	db *gorm.DB
}

func NewLoadsByStatusQueryHandler(db *gorm.DB) LoadsByStatusQueryHandler {
	return LoadsByStatusQueryHandler{db: db}
}

// Handle returns a count for every status, zero included.
func (h LoadsByStatusQueryHandler) Handle(ctx context.Context, query LoadsByStatusQuery) (map[load.Status]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[load.Status]int, len(load.Statuses()))
	for _, s := range load.Statuses() {
		counts[s] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM loads
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var n int
		if err = rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		status, parseErr := load.ParseStatus(name)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[status] = n
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
