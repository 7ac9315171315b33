package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestParseRows(t *testing.T) {
	csvData := "nome;quantidade;valor_compra;valor_venda;data_validade;estoque_minimo;tags\n" +
		"Água Mineral 500ml;24;1,20;2,50;31/12/2026;10;Bebidas|Frio\n" +
		";;;;;;\n" +
		"Sabão em pó;abc;5;9;;;\n" +
		"Arroz 5kg;1.200;R$ 18,90;27,00;2027-03-01;;\n"

	rows, errs, err := parseRows(newReader(strings.NewReader(csvData), false))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "linha 4")

	agua := rows[0]
	assert.Equal(t, "Água Mineral 500ml", agua.product.Name)
	assert.Equal(t, 24, agua.product.Quantity)
	assert.True(t, decimal.RequireFromString("1.20").Equal(agua.product.PurchasePrice))
	assert.True(t, decimal.RequireFromString("2.50").Equal(agua.product.SalePrice))
	require.NotNil(t, agua.product.ExpiryDate)
	assert.Equal(t, "2026-12-31", *agua.product.ExpiryDate)
	require.NotNil(t, agua.product.MinStock)
	assert.Equal(t, 10, *agua.product.MinStock)
	assert.Equal(t, []string{"Bebidas", "Frio"}, agua.tags)

	arroz := rows[1]
	assert.Equal(t, 1200, arroz.product.Quantity)
	assert.True(t, decimal.RequireFromString("18.90").Equal(arroz.product.PurchasePrice))
	assert.Equal(t, "2027-03-01", *arroz.product.ExpiryDate)
	assert.Nil(t, arroz.product.MinStock)
	assert.Empty(t, arroz.tags)
}

func TestParseRows_Latin1(t *testing.T) {
	enc, err := charmap.ISO8859_1.NewEncoder().String("nome;valor_venda\nFeijão;8,75\n")
	require.NoError(t, err)

	rows, errs, err := parseRows(newReader(bytes.NewBufferString(enc), true))
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, rows, 1)
	assert.Equal(t, "Feijão", rows[0].product.Name)
}

func TestParseRows_MissingColumn(t *testing.T) {
	_, _, err := parseRows(newReader(strings.NewReader("nome;quantidade\nX;1\n"), false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valor_venda")
}

func TestParseMoney(t *testing.T) {
	cases := map[string]string{
		"":         "0",
		"12,50":    "12.5",
		"1.234,56": "1234.56",
		"R$ 3,00":  "3",
		"7.25":     "7.25",
	}
	for in, want := range cases {
		got, err := parseMoney(in)
		require.NoError(t, err, in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "%q -> %s", in, got)
	}
	_, err := parseMoney("doze")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("05/01/2027")
	require.NoError(t, err)
	assert.Equal(t, "2027-01-05", d)

	_, err = parseDate("2027/01/05")
	assert.Error(t, err)
}
