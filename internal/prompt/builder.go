// Package prompt renders a month of transactions into a deterministic
// system prompt for a downstream text-generation model.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"finsight/internal/core"
)

// The instruction template is a fixed asset. Its four numbered analysis
// tasks are part of the contract with the assistant and must keep their
// meaning across locales.
var templates = map[string]struct {
	noData  string
	header  string
	persona string
	tasks   string
}{
	LocaleEN: {
		noData:  "No transactions to analyze yet.",
		header:  "User transactions for %s. Format: date-time | account | category | amount %s | description",
		persona: "You are a personal finance assistant.",
		tasks: `Tasks:
1) Identify the main expense categories and how much in %s/month goes to each.
2) List the recurring payments (subscriptions, rent, transport passes and similar).
3) Suggest 3-5 concrete ways to cut spending without serious discomfort.
4) Flag any potentially risky patterns (overspending, frequent cash withdrawals, impulsive late-night purchases and similar).

Answer in short paragraphs, without tables.`,
	},
	LocaleRU: {
		noData:  "Нет транзакций для анализа.",
		header:  "Транзакции пользователя за %s. Формат: дата-время | счёт | категория | сумма %s | описание",
		persona: "Ты — персональный финансовый ассистент.",
		tasks: `Задача:
1) Найди основные категории расходов и сколько в %s/месяц уходит на каждую.
2) Укажи регулярные платежи (подписки, аренда, проезд и т.п.).
3) Предложи 3–5 конкретных идей, где можно сократить траты без серьёзного дискомфорта.
4) Отметь любые потенциально опасные паттерны (перерасход, частое снятие наличных, импульсивные покупки ночью и т.п.).

Отвечай по-русски, короткими абзацами, без таблиц.`,
	},
}

// Builder renders transaction ledgers through its Formatter. The zero
// value is not usable; construct with NewBuilder.
type Builder struct {
	fmt Formatter
}

func NewBuilder(f Formatter) Builder {
	return Builder{fmt: f}
}

// Locale reports the builder's locale so collaborators can localize
// their own texts consistently.
func (b Builder) Locale() string {
	return b.fmt.Locale
}

// Formatter exposes the builder's formatter for callers that render
// month labels or amounts themselves.
func (b Builder) Formatter() Formatter {
	return b.fmt
}

// NoDataNotice is the fixed text returned instead of a prompt when there
// is nothing to analyze.
func (b Builder) NoDataNotice() string {
	return templates[b.fmt.Locale].noData
}

// Build renders the latest month's transactions as a system prompt:
// persona framing, a pipe-separated ledger sorted ascending by
// timestamp, and the fixed analysis tasks. Given the same locale and
// time zone the output is deterministic.
func (b Builder) Build(txs []core.Transaction) string {
	if len(txs) == 0 {
		return b.NoDataNotice()
	}
	key, _ := core.LatestMonthKey(txs)
	tpl := templates[b.fmt.Locale]

	month := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if core.MonthKeyOf(tx.Date) == key {
			month = append(month, tx)
		}
	}
	sort.SliceStable(month, func(i, j int) bool {
		return month[i].Date.Before(month[j].Date)
	})

	var sb strings.Builder
	sb.WriteString(tpl.persona)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(tpl.header, b.fmt.MonthLabel(key), b.fmt.Currency))
	sb.WriteString("\n\n")
	for _, tx := range month {
		sb.WriteString(b.fmt.DateTime(tx.Date))
		sb.WriteString(" | ")
		sb.WriteString(tx.AccountName)
		sb.WriteString(" | ")
		sb.WriteString(tx.CategoryName())
		sb.WriteString(" | ")
		sb.WriteString(b.fmt.Amount(tx.Amount))
		sb.WriteString(" | ")
		sb.WriteString(tx.Description)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(tpl.tasks, b.fmt.Currency))
	return sb.String()
}
