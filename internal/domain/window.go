package domain

import (
	"errors"
	"fmt"
	"time"
)

type AnalysisPeriod string

const (
	AnalysisPeriodYesterday AnalysisPeriod = "yesterday"
	AnalysisPeriodTrailing7 AnalysisPeriod = "trailing7"
)

// TrailingWindowDays é o tamanho da janela "trailing7"
const TrailingWindowDays = 7

var ErrInvalidAnalysisPeriod = errors.New("invalid analysis period")

// ParseAnalysisPeriod valida o período recebido; vazio assume trailing7
func ParseAnalysisPeriod(value string) (AnalysisPeriod, error) {
	switch AnalysisPeriod(value) {
	case "":
		return AnalysisPeriodTrailing7, nil
	case AnalysisPeriodYesterday, AnalysisPeriodTrailing7:
		return AnalysisPeriod(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAnalysisPeriod, value)
	}
}

// AnalysisWindow é o intervalo inclusivo de dias analisados em uma requisição.
// End é sempre o dia anterior a clientDate: o dia corrente nunca entra na análise.
type AnalysisWindow struct {
	Start  time.Time      `json:"startDate"`
	End    time.Time      `json:"endDate"`
	Period AnalysisPeriod `json:"analysisPeriod"`
}

func NewAnalysisWindow(clientDate time.Time, period AnalysisPeriod) AnalysisWindow {
	today := DateOf(clientDate)
	end := today.AddDate(0, 0, -1)

	start := end
	if period == AnalysisPeriodTrailing7 {
		start = today.AddDate(0, 0, -TrailingWindowDays)
	}

	return AnalysisWindow{
		Start:  start,
		End:    end,
		Period: period,
	}
}

// Today retorna o dia do cliente (o primeiro dia fora da janela)
func (w AnalysisWindow) Today() time.Time {
	return w.End.AddDate(0, 0, 1)
}

// Yesterday é o último dia completo disponível para análise
func (w AnalysisWindow) Yesterday() time.Time {
	return w.End
}

// Days retorna a quantidade de dias do calendário cobertos pela janela
func (w AnalysisWindow) Days() int {
	return DaysBetween(w.Start, w.End)
}

// DateOf converte um instante para a meia-noite UTC do mesmo dia do calendário,
// respeitando o fuso do próprio valor.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateDayUTC trunca um instante para o limite do dia em UTC
func TruncateDayUTC(t time.Time) time.Time {
	return DateOf(t.UTC())
}

// DaysBetween conta os dias do intervalo inclusivo [start, end]; 0 se start > end
func DaysBetween(start, end time.Time) int {
	start, end = DateOf(start), DateOf(end)
	if start.After(end) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
