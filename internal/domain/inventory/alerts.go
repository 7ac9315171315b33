package inventory

import (
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// Rótulos de alerta de produto. Não são mutuamente exclusivos.
const (
	AlertLowStock   = "Estoque baixo"
	AlertExpired    = "Vencido"
	AlertNearExpiry = "Perto do vencimento"
)

// Alerts calcula os alertas de um produto para a data today e a janela de aviso (dias).
// Função pura: não persiste nada e deve ser recalculada a cada leitura.
//
//	Estoque baixo        quantity < estoque mínimo
//	Vencido              validade < hoje
//	Perto do vencimento  hoje <= validade e (validade − hoje) <= janela
func Alerts(p *entity.Product, today time.Time, windowDays int) []string {
	var labels []string
	if p == nil {
		return labels
	}
	if p.Quantity < p.MinStock {
		labels = append(labels, AlertLowStock)
	}
	if p.ExpiryDate != nil {
		days := DaysUntil(today, *p.ExpiryDate)
		switch {
		case days < 0:
			labels = append(labels, AlertExpired)
		case days <= windowDays:
			labels = append(labels, AlertNearExpiry)
		}
	}
	return labels
}

// DaysUntil número de dias civis de from até to (negativo se to já passou).
// Ignora hora e fuso: compara apenas ano/mês/dia.
func DaysUntil(from, to time.Time) int {
	a := DateOf(from)
	b := DateOf(to)
	return int(b.Sub(a).Hours() / 24)
}

// DateOf trunca t para o dia civil em UTC, preservando ano/mês/dia do fuso de origem.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
