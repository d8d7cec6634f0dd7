package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/comercio-admin/pkg/logger"
)

func TestConsoleNotifier_PrefijaElResultado(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf, logger.NewNop())

	n.Success("Categorías", "Categoría creada")
	n.Error("Categorías", "No se pudo crear la categoría")

	out := buf.String()
	assert.Contains(t, out, "✔ Categorías: Categoría creada")
	assert.Contains(t, out, "✖ Categorías: No se pudo crear la categoría")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		respuesta string
		want      bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"s\n", true},
		{"si\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false}, // EOF sin respuesta
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		got := confirm(strings.NewReader(tc.respuesta), &buf, "Deactivate \"Shoes\"?")
		assert.Equal(t, tc.want, got, "respuesta %q", tc.respuesta)
		assert.Contains(t, buf.String(), "Deactivate")
	}
}

func TestPrintTable_AlineaColumnas(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, []string{"ID", "Name", "Status"}, [][]string{
		{"c1", "Shoes", "Active"},
		{"c2", "Bags", "Disabled"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4, "cabecera + separador + dos filas")
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[2], "Shoes")
	// Cada columna arranca en la misma posición en todas las filas.
	assert.Equal(t, strings.Index(lines[2], "Shoes"), strings.Index(lines[3], "Bags"))
}

func TestPrintPageFooter(t *testing.T) {
	var buf bytes.Buffer
	printPageFooter(&buf, 2, 3, 12)
	assert.Contains(t, buf.String(), "Página 2 de 3")
	assert.Contains(t, buf.String(), "12")
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Active", statusLabel(true))
	assert.Equal(t, "Disabled", statusLabel(false))
}
