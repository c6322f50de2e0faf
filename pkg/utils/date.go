package utils

import "time"

// BRT é o fuso horário usado para todas as datas de campanha
var BRT = mustLoadBRT()

func mustLoadBRT() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// Fallback para UTC-3 fixo quando o tzdata não está disponível no host
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

// NowBRT retorna o horário atual no fuso de Brasília
func NowBRT() time.Time {
	return time.Now().In(BRT)
}

// ParseDate interpreta uma data YYYY-MM-DD no fuso de Brasília.
// String vazia retorna nil, sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, BRT)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// DateOnly descarta a parte de hora de um timestamp, mantendo o fuso
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
