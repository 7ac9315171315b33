// seed importa produtos de um CSV exportado da planilha da loja.
//
// Uso: go run ./cmd/seed [-utf8] produtos.csv
// Separador ';', cabeçalho com nome;quantidade;valor_compra;valor_venda;data_validade;estoque_minimo;tags.
// Tags separadas por '|' são criadas se não existirem. Por padrão o arquivo é lido como ISO-8859-1.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Estoque-api/pkg/config"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

func main() {
	args := os.Args[1:]
	latin1 := true
	if len(args) > 0 && args[0] == "-utf8" {
		latin1 = false
		args = args[1:]
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed [-utf8] produtos.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carregar configuração: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("seed")

	f, err := os.Open(args[0])
	if err != nil {
		log.Fatal().Err(err).Str("file", args[0]).Msg("abrir CSV")
	}
	defer f.Close()

	rows, rowErrs, err := parseRows(newReader(f, latin1))
	if err != nil {
		log.Fatal().Err(err).Msg("ler CSV")
	}
	for _, e := range rowErrs {
		log.Warn().Err(e).Msg("linha ignorada")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()
	if _, err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migrations")
	}

	tagRepo := postgres.NewTagRepository(pool)
	productTagRepo := postgres.NewProductTagRepository(pool)
	tagUC := usecase.NewTagUseCase(tagRepo, productTagRepo)
	productUC := usecase.NewProductUseCase(postgres.NewTxRunner(pool), postgres.NewProductRepository(pool),
		tagRepo, productTagRepo, cfg.Alerts.ExpiryWindowDays)

	tags, err := newTagIndex(ctx, tagUC)
	if err != nil {
		log.Fatal().Err(err).Msg("listar tags")
	}

	var created, failed int
	for _, r := range rows {
		in := r.product
		for _, name := range r.tags {
			id, err := tags.ensure(ctx, name)
			if err != nil {
				log.Warn().Err(err).Int("line", r.line).Str("tag", name).Msg("tag ignorada")
				continue
			}
			in.TagIDs = append(in.TagIDs, id)
		}
		p, err := productUC.Create(ctx, in)
		if err != nil {
			failed++
			log.Warn().Err(err).Int("line", r.line).Str("name", in.Name).Msg("produto não importado")
			continue
		}
		created++
		log.Debug().Str("id", p.ID).Str("name", p.Name).Msg("produto importado")
	}

	log.Info().
		Int("created", created).
		Int("failed", failed).
		Int("skipped_lines", len(rowErrs)).
		Msg("importação concluída")
}

// tagIndex resolve nomes de tag para IDs, criando as que faltam.
type tagIndex struct {
	uc   *usecase.TagUseCase
	byID map[string]string // nome minúsculo -> id
}

func newTagIndex(ctx context.Context, uc *usecase.TagUseCase) (*tagIndex, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := &tagIndex{uc: uc, byID: make(map[string]string, len(list))}
	for _, t := range list {
		idx.byID[strings.ToLower(t.Name)] = t.ID
	}
	return idx, nil
}

func (t *tagIndex) ensure(ctx context.Context, name string) (string, error) {
	key := strings.ToLower(name)
	if id, ok := t.byID[key]; ok {
		return id, nil
	}
	tag, err := t.uc.Create(ctx, dto.CreateTagRequest{Name: name})
	if err != nil {
		return "", err
	}
	t.byID[key] = tag.ID
	return tag.ID, nil
}
