package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain"
)

// DateLayout formato de data usado na API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ErrorResponse corpo de erro. Toda operação que falha responde {success:false, code, error}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

// PeriodDTO intervalo de datas de um relatório.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ParseDate converte YYYY-MM-DD para time.Time (UTC, 00:00). Vazio devolve nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate formata uma data opcional como YYYY-MM-DD.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ParsePeriod interpreta start/end (YYYY-MM-DD, fuso de now). Vazios: primeiro dia do mês corrente e hoje.
// end retornado é exclusivo: meia-noite do dia seguinte ao informado, para filtros data >= start AND data < end.
func ParsePeriod(startStr, endStr string, now time.Time) (start, end time.Time, err error) {
	if strings.TrimSpace(endStr) == "" {
		end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	} else {
		end, err = time.ParseInLocation(DateLayout, strings.TrimSpace(endStr), now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end inválido: %w", domain.ErrInvalidInput)
		}
	}
	end = end.AddDate(0, 0, 1)

	if strings.TrimSpace(startStr) == "" {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	} else {
		start, err = time.ParseInLocation(DateLayout, strings.TrimSpace(startStr), now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start inválido: %w", domain.ErrInvalidInput)
		}
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start posterior a end: %w", domain.ErrInvalidInput)
	}
	return start, end, nil
}

// NewPeriodDTO devolve o período como exibido: end exclusivo vira o último dia incluído.
func NewPeriodDTO(start, end time.Time) PeriodDTO {
	return PeriodDTO{StartDate: start.Format(DateLayout), EndDate: end.AddDate(0, 0, -1).Format(DateLayout)}
}
