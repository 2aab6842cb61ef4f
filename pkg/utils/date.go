package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DaysAgo retorna a data de hoje menos o número de dias informado,
// no formato YYYY-MM-DD usado pelas APIs de estatísticas.
func DaysAgo(days int) string {
	return time.Now().AddDate(0, 0, -days).Format(time.DateOnly)
}

// Today retorna a data atual no formato YYYY-MM-DD.
func Today() string {
	return time.Now().Format(time.DateOnly)
}
