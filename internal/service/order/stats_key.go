package order

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
	"time"

	"orderdesk/internal/entities"
)

// statsKey - отпечаток фильтра, одинаковые фильтры попадают в один ключ кэша.
func statsKey(filter entities.OrderFilter) string {
	var b strings.Builder

	writeOptional := func(name string, value *string) {
		b.WriteString(name)
		b.WriteByte('=')
		if value != nil {
			b.WriteString(*value)
		}
		b.WriteByte(';')
	}
	writeTime := func(name string, value *time.Time) {
		b.WriteString(name)
		b.WriteByte('=')
		if value != nil {
			b.WriteString(value.UTC().Format(time.RFC3339Nano))
		}
		b.WriteByte(';')
	}

	writeOptional("restaurant", filter.RestaurantID)
	writeOptional("user", filter.UserID)
	writeOptional("rider", filter.RiderID)

	statuses := make([]string, 0, len(filter.Statuses))
	for _, status := range filter.Statuses {
		statuses = append(statuses, status.String())
	}
	slices.Sort(statuses)
	statuses = slices.Compact(statuses)
	b.WriteString("statuses=")
	b.WriteString(strings.Join(statuses, ","))
	b.WriteByte(';')

	writeTime("from", filter.CreatedFrom)
	writeTime("to", filter.CreatedTo)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
