package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("registro não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("a quantidade deve ser maior que zero")
	ErrInvalidAmount     = errors.New("o valor não pode ser negativo")
	ErrInsufficientStock = errors.New("quantidade insuficiente em estoque")
	ErrInvalidCustomer   = errors.New("informe o nome do cliente para venda fiado")
	ErrDuplicateName     = errors.New("já existe um registro com esse nome")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrUnauthorized      = errors.New("não autorizado")

	// Máquina de estados do caixa.
	ErrCaixaAlreadyOpenToday     = errors.New("caixa já foi aberto hoje")
	ErrCaixaAlreadyOpenElsewhere = errors.New("já existe um caixa aberto")
	ErrCaixaAlreadyClosed        = errors.New("este caixa já foi fechado")
)
