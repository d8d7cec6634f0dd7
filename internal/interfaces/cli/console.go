package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/comercio-admin/internal/application/ports"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

var _ ports.Notifier = (*ConsoleNotifier)(nil)

// ConsoleNotifier presenta las notificaciones de los stores en la consola,
// el reemplazo de los diálogos de la app.
type ConsoleNotifier struct {
	out io.Writer
	log *logger.Logger
}

// NewConsoleNotifier construye el notificador.
func NewConsoleNotifier(out io.Writer, log *logger.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{out: out, log: log}
}

// Success notifica una operación exitosa.
func (n *ConsoleNotifier) Success(title, message string) {
	fmt.Fprintf(n.out, "✔ %s: %s\n", title, message)
	n.log.Info().Str("title", title).Msg(message)
}

// Error notifica una falla.
func (n *ConsoleNotifier) Error(title, message string) {
	fmt.Fprintf(n.out, "✖ %s: %s\n", title, message)
	n.log.Warn().Str("title", title).Msg(message)
}

// confirm pregunta sí/no por la consola; solo "y" o "s" confirman.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "s" || answer == "yes" || answer == "si"
}

// printTable imprime una tabla de texto con anchos ajustados al contenido.
func printTable(w io.Writer, columns []string, rows [][]string) {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len([]rune(c))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}
	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
	printRow(columns)
	sep := make([]string, len(columns))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	printRow(sep)
	for _, row := range rows {
		printRow(row)
	}
}

// printPageFooter pie de paginación de los listados.
func printPageFooter(w io.Writer, page, totalPages, totalItems int) {
	fmt.Fprintf(w, "\nPágina %d de %d (%d filas)\n", page, totalPages, totalItems)
}
