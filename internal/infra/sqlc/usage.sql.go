package sqlc

import (
	"context"
)

const countPlatformUsage = `-- name: CountPlatformUsage :many
SELECT 'user' AS kind, role AS key, COUNT(*) AS count FROM app_users GROUP BY role
UNION ALL
SELECT 'course' AS kind, status AS key, COUNT(*) AS count FROM courses GROUP BY status
UNION ALL
SELECT 'enrollment' AS kind, status AS key, COUNT(*) AS count FROM enrollments GROUP BY status
`

type CountPlatformUsageRow struct {
	Kind  string `json:"kind"`
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

func (q *Queries) CountPlatformUsage(ctx context.Context, db DBTX) ([]CountPlatformUsageRow, error) {
	rows, err := db.Query(ctx, countPlatformUsage)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CountPlatformUsageRow{}
	for rows.Next() {
		var i CountPlatformUsageRow
		if err := rows.Scan(&i.Kind, &i.Key, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
