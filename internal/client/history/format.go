package history

import (
	"fmt"
	"time"
)

var weekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var months = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}

// FormatDay renders t in local time the way the map labels a day,
// e.g. "miércoles, 1 de mayo".
func FormatDay(t time.Time) string {
	t = t.Local()
	return fmt.Sprintf("%s, %d de %s", weekdays[t.Weekday()], t.Day(), months[t.Month()-1])
}
