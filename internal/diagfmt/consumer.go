package diagfmt

import (
	"io"

	"mlc/internal/diag"
	"mlc/internal/source"
)

// NewConsumer возвращает diag.Consumer, который печатает каждую диагностику
// в w по мере поступления. Подходит для интерактивного режима, где ждать
// конца фазы не хочется.
func NewConsumer(w io.Writer, m *source.Manager, opts PrettyOpts) diag.Consumer {
	return diag.ConsumerFunc(func(d *diag.Diagnostic, _ diag.Info) {
		PrettyOne(w, d, m, opts)
	})
}

// NewCollector возвращает diag.Consumer, складывающий диагностики в bag.
// Рендеринг откладывается до конца фазы: bag можно отсортировать и
// дедуплицировать перед выводом.
func NewCollector(bag *diag.Bag) diag.Consumer {
	return diag.ConsumerFunc(func(d *diag.Diagnostic, _ diag.Info) {
		bag.Add(d)
	})
}
