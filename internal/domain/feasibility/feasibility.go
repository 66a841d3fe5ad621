package feasibility

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	appErrors "FinMate/internal/errors"
)

// Category de meta com custo de referencia fixo.
type Category string

const (
	CategoryBuyHouse    Category = "Buy House"
	CategoryBuyCar      Category = "Buy Car"
	CategoryVacation    Category = "Vacation"
	CategoryEducation   Category = "Education"
	CategoryInvestments Category = "Investments"
	CategoryOthers      Category = "Others"
)

const (
	costBuyHouse    = 500000
	costBuyCar      = 30000
	costVacation    = 5000
	costEducation   = 10000
	costInvestments = 20000
	costOthers      = 10000
)

// CooldownWindow e a janela de bloqueio entre envios de renda.
const CooldownWindow = 30 * 24 * time.Hour

// IncomeWarningThreshold: despesas acima de 80% da renda disparam alerta.
const IncomeWarningThreshold = 0.8

func Categories() []Category {
	return []Category{
		CategoryBuyHouse,
		CategoryBuyCar,
		CategoryVacation,
		CategoryEducation,
		CategoryInvestments,
		CategoryOthers,
	}
}

// ReferenceCost devolve o custo base da categoria. Categoria desconhecida
// resolve para zero, nunca para erro.
func ReferenceCost(category Category) float64 {
	switch category {
	case CategoryBuyHouse:
		return costBuyHouse
	case CategoryBuyCar:
		return costBuyCar
	case CategoryVacation:
		return costVacation
	case CategoryEducation:
		return costEducation
	case CategoryInvestments:
		return costInvestments
	case CategoryOthers:
		return costOthers
	default:
		return 0
	}
}

// ComputeRequiredSavings calcula quanto precisa ser poupado por periodo para
// cobrir o custo de referencia da categoria dentro da duracao informada.
// A unidade do periodo (ano ou mes) e responsabilidade do chamador; aqui so
// importa que a duracao seja finita e positiva. Nenhum arredondamento e
// aplicado: exibicao com 2 casas decimais e responsabilidade de quem formata.
func ComputeRequiredSavings(category Category, duration float64) (float64, error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return 0, appErrors.ErrInvalidDuration
	}
	return ReferenceCost(category) / duration, nil
}

// RequiredSavingsForTarget e a variante da tela de acompanhamento: o alvo vem
// do proprio usuario em vez da tabela de referencia.
func RequiredSavingsForTarget(targetAmount, duration float64) (float64, error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return 0, appErrors.ErrInvalidDuration
	}
	if math.IsNaN(targetAmount) || math.IsInf(targetAmount, 0) || targetAmount <= 0 {
		return 0, appErrors.NewValidationError("target", "deve ser maior que zero")
	}
	return targetAmount / duration, nil
}

type Result struct {
	RequiredPerPeriod float64 `json:"requiredPerPeriod"`
	Feasible          bool    `json:"feasible"`
	Message           string  `json:"message"`
}

// EvaluateFeasibility decide se a renda declarada cobre a poupanca exigida.
// Igualdade exata conta como viavel. A mensagem de inviabilidade embute o
// valor exigido com exatamente 2 casas decimais.
func EvaluateFeasibility(income, requiredPerPeriod float64) (Result, error) {
	if math.IsNaN(income) || math.IsInf(income, 0) {
		return Result{}, appErrors.ErrInvalidIncome
	}

	result := Result{RequiredPerPeriod: requiredPerPeriod}
	if income >= requiredPerPeriod {
		result.Feasible = true
		result.Message = "Voce pode atingir sua meta dentro do prazo informado!"
		return result, nil
	}

	result.Message = fmt.Sprintf(
		"Sua poupanca atual nao e suficiente para atingir a meta no prazo informado. Voce precisa poupar pelo menos %s por periodo para alcancar sua meta.",
		FormatAmount(requiredPerPeriod),
	)
	return result, nil
}

// FixedAmounts carrega os valores brutos do formulario para as 5 categorias
// fixas, na ordem canonica de exibicao.
type FixedAmounts struct {
	Food           string `json:"food"`
	Medicines      string `json:"medicines"`
	Entertainment  string `json:"entertainment"`
	Transportation string `json:"transportation"`
	Clothing       string `json:"clothing"`
}

type OtherCategory struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type CategoryAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ParseLenient trata campos em branco ou nao numericos como zero. Formularios
// parcialmente preenchidos sao um caso de uso valido, nao um erro.
func ParseLenient(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// ParseStrict valida campos que condicionam uma decisao de viabilidade
// (duracao, renda): nao numerico e erro, nunca zero silencioso.
func ParseStrict(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, appErrors.ErrInvalidIncome
	}
	return value, nil
}

// AggregateExpenseTotal soma categorias fixas e adicionais com parsing
// leniente. A soma e independente da ordem dos campos.
func AggregateExpenseTotal(fixed FixedAmounts, others []OtherCategory) float64 {
	total := ParseLenient(fixed.Food) +
		ParseLenient(fixed.Medicines) +
		ParseLenient(fixed.Entertainment) +
		ParseLenient(fixed.Transportation) +
		ParseLenient(fixed.Clothing)
	for _, other := range others {
		total += ParseLenient(other.Amount)
	}
	return total
}

// ValidateSubmission rejeita envios em que todos os valores estao em branco
// ou zerados: pelo menos uma categoria precisa ter valor.
func ValidateSubmission(fixed FixedAmounts, others []OtherCategory) error {
	if AggregateExpenseTotal(fixed, others) == 0 {
		return appErrors.ErrEmptySubmission
	}
	return nil
}

// Breakdown materializa a tabela de categorias para o renderizador de
// relatorios: as 5 fixas sempre presentes (mesmo zeradas) e na ordem
// canonica, seguidas das adicionais na ordem informada.
func Breakdown(fixed FixedAmounts, others []OtherCategory) []CategoryAmount {
	breakdown := []CategoryAmount{
		{Name: "Food", Amount: ParseLenient(fixed.Food)},
		{Name: "Medicines", Amount: ParseLenient(fixed.Medicines)},
		{Name: "Entertainment", Amount: ParseLenient(fixed.Entertainment)},
		{Name: "Transportation", Amount: ParseLenient(fixed.Transportation)},
		{Name: "Clothing", Amount: ParseLenient(fixed.Clothing)},
	}
	for _, other := range others {
		name := strings.TrimSpace(other.Name)
		if name == "" {
			name = "Other"
		}
		breakdown = append(breakdown, CategoryAmount{Name: name, Amount: ParseLenient(other.Amount)})
	}
	return breakdown
}

// ComputeDailyAverage calcula a media dos totais diarios. Conjunto vazio
// devolve zero em vez de dividir por zero.
func ComputeDailyAverage(totals []float64) float64 {
	if len(totals) == 0 {
		return 0
	}
	var sum float64
	for _, total := range totals {
		sum += total
	}
	return sum / float64(len(totals))
}

// EvaluateIncomeWarning sinaliza quando as despesas passam de 80% da renda.
// Renda zerada nunca gera alerta.
func EvaluateIncomeWarning(totalIncome, totalExpenses float64) bool {
	return totalExpenses > totalIncome*IncomeWarningThreshold && totalIncome > 0
}

// IsIncomeEditable aplica a janela de 30 dias sobre o ultimo envio de renda.
// O relogio vem sempre do chamador para manter a funcao deterministica.
// Quando bloqueado, remaining informa quanto falta para liberar.
func IsIncomeEditable(now, lastSavedTime time.Time) (editable bool, remaining time.Duration) {
	remaining = lastSavedTime.Add(CooldownWindow).Sub(now)
	if remaining <= 0 {
		return true, 0
	}
	return false, remaining
}

// FormatAmount formata valores monetarios para exibicao com 2 casas decimais.
// Prefixo de moeda e responsabilidade do chamador.
func FormatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
