package analytics

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

var (
	thaiMonthsShort = [12]string{"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.", "ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค."}
	thaiMonthsLong  = [12]string{"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม"}
)

// buddhistEraOffset diferencia entre la era budista y la gregoriana.
const buddhistEraOffset = 543

// DayLabel etiqueta de un día (clave "2006-01-02"). En tailandés usa el año
// de la era budista: "1 ม.ค. 2567" (corta) o "1 มกราคม 2567" (larga).
func DayLabel(day string, long bool, tag language.Tag) string {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return day
	}
	if tag != language.Thai {
		if long {
			return t.Format("2 January 2006")
		}
		return t.Format("2 Jan 2006")
	}
	month := thaiMonthsShort[t.Month()-1]
	if long {
		month = thaiMonthsLong[t.Month()-1]
	}
	return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year()+buddhistEraOffset)
}
