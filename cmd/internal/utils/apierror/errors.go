package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all error responses sent to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be rendered and not for logging circumstances. The underlying
// cause is logged where it happens and never reaches the page.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

// Action is the single manual way out of an error page.
type Action struct {
	Label string
	URL   string
}

var (
	RetryHomeAction    = &Action{Label: "Tentar novamente", URL: "/"}
	RetryResultsAction = &Action{Label: "Tentar novamente", URL: "/results"}
	BackToSearchAction = &Action{Label: "Voltar à Busca", URL: "/"}
	BackToListAction   = &Action{Label: "Voltar à Lista", URL: "/results"}
)

// ViewError is the error state of a page.
type ViewError struct {
	Message string
	Status  int
	Action  *Action
}

func (v *ViewError) Code() int {
	return v.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

// First returns one problem of field, or an empty string.
func (s *StructuredError) First(field string) string {
	if problems := s.Errors[field]; len(problems) > 0 {
		return problems[0]
	}
	return ""
}

var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "Erro interno do servidor")
	CatalogDownError    = NewSimple(http.StatusBadGateway, "API do catálogo indisponível")

	HomeUnavailableError = NewView(http.StatusBadGateway,
		"Não foi possível conectar à API. Por favor, tente novamente mais tarde.", RetryHomeAction)
	SearchFailedError = NewView(http.StatusBadGateway,
		"Ocorreu um erro ao realizar a busca. Por favor, tente novamente.", BackToSearchAction)
	RegionSearchFailedError = NewView(http.StatusBadGateway,
		"Ocorreu um erro ao buscar indústrias nesta região. Por favor, tente novamente.", BackToSearchAction)
	ResultsUnavailableError = NewView(http.StatusBadGateway,
		"Não foi possível carregar os resultados. Por favor, tente novamente.", RetryResultsAction)
	CompanyUnavailableError = NewView(http.StatusBadGateway,
		"Não foi possível carregar os detalhes desta empresa. Por favor, tente novamente.", BackToListAction)
	CompanyNotFoundError = NewView(http.StatusNotFound,
		"Não foi possível carregar os detalhes desta empresa. Por favor, tente novamente.", BackToListAction)
	MissingCompanyIDError = NewView(http.StatusBadRequest, "ID da empresa não fornecido", BackToListAction)
	PageNotFoundError     = NewView(http.StatusNotFound, "Página não encontrada", BackToSearchAction)
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "Este campo é obrigatório")
		case "max":
			problems[field] = append(problems[field], "Valor muito longo, máximo: "+fe.Param())
		case "region":
			problems[field] = append(problems[field], "Região desconhecida")
		case "catalogid":
			problems[field] = append(problems[field], "Identificador inválido")
		case "oneof":
			problems[field] = append(problems[field], "Valor deve ser um de: "+fe.Param())

		default:
			problems[field] = append(problems[field], "Valor inválido")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewView(status int, msg string, action *Action) *ViewError {
	return &ViewError{Status: status, Message: msg, Action: action}
}

// AsView turns any error response into something an error page can render.
func AsView(resp ErrorResponse) *ViewError {
	switch e := resp.(type) {
	case *ViewError:
		return e
	case *APIError:
		return NewView(e.Status, e.Message, BackToSearchAction)
	case *StructuredError:
		return NewView(e.Status, "Dados inválidos", BackToSearchAction)
	default:
		return NewView(resp.Code(), InternalServerError.Message, RetryHomeAction)
	}
}
