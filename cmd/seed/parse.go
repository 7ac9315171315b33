package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
)

// Colunas esperadas no cabeçalho (ordem livre, nomes sem acento e minúsculos).
const (
	colName     = "nome"
	colQuantity = "quantidade"
	colPurchase = "valor_compra"
	colSale     = "valor_venda"
	colExpiry   = "data_validade"
	colMinStock = "estoque_minimo"
	colTags     = "tags"
)

// row produto lido de uma linha do CSV.
type row struct {
	line    int
	product dto.CreateProductRequest
	tags    []string
}

// newReader devolve um leitor de CSV separado por ';'. latin1 converte ISO-8859-1 (export do Excel) para UTF-8.
func newReader(r io.Reader, latin1 bool) *csv.Reader {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	return cr
}

// parseRows lê todas as linhas. Linhas inválidas não interrompem a leitura: voltam em errs com o número da linha.
func parseRows(cr *csv.Reader) (rows []row, errs []error, err error) {
	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("ler cabeçalho: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{colName, colSale} {
		if _, ok := idx[required]; !ok {
			return nil, nil, fmt.Errorf("coluna obrigatória ausente: %s", required)
		}
	}

	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			errs = append(errs, fmt.Errorf("linha %d: %w", line, err))
			continue
		}
		field := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if field(colName) == "" {
			continue
		}
		r, err := parseRow(line, field)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rows = append(rows, r)
	}
	return rows, errs, nil
}

func parseRow(line int, field func(string) string) (row, error) {
	r := row{line: line}
	r.product.Name = field(colName)

	var err error
	if r.product.Quantity, err = parseInt(field(colQuantity)); err != nil {
		return r, fmt.Errorf("linha %d: quantidade: %w", line, err)
	}
	if r.product.PurchasePrice, err = parseMoney(field(colPurchase)); err != nil {
		return r, fmt.Errorf("linha %d: valor_compra: %w", line, err)
	}
	if r.product.SalePrice, err = parseMoney(field(colSale)); err != nil {
		return r, fmt.Errorf("linha %d: valor_venda: %w", line, err)
	}
	if s := field(colExpiry); s != "" {
		d, err := parseDate(s)
		if err != nil {
			return r, fmt.Errorf("linha %d: data_validade: %w", line, err)
		}
		r.product.ExpiryDate = &d
	}
	if s := field(colMinStock); s != "" {
		n, err := parseInt(s)
		if err != nil {
			return r, fmt.Errorf("linha %d: estoque_minimo: %w", line, err)
		}
		r.product.MinStock = &n
	}
	for _, t := range strings.Split(field(colTags), "|") {
		if t = strings.TrimSpace(t); t != "" {
			r.tags = append(r.tags, t)
		}
	}
	return r, nil
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(strings.ReplaceAll(s, ".", ""))
}

// parseMoney aceita "1.234,50", "R$ 12,50" e "12.50".
func parseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

// parseDate aceita DD/MM/AAAA ou AAAA-MM-DD e devolve AAAA-MM-DD.
func parseDate(s string) (string, error) {
	for _, layout := range []string{"02/01/2006", dto.DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dto.DateLayout), nil
		}
	}
	return "", fmt.Errorf("data inválida %q", s)
}
