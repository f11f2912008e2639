package postgres

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/almacenpro/rma-backend/internal/application/backup"
)

var _ backup.Dumper = (*DumpRepo)(nil)

// tablasRespaldo es la lista cerrada de tablas a volcar, en orden de
// dependencia para que el restore con FKs funcione de corrido.
var tablasRespaldo = []string{
	"marcas",
	"clientes",
	"transportes",
	"productos",
	"ordenes_produccion",
	"op_detalle",
	"rma",
	"rma_lotes_descarga",
	"rma_lotes_detalle",
	"ordenes_meli",
	"usuarios",
}

// DumpRepo genera un volcado SQL (sentencias INSERT) de las tablas
// administrativas, streameado al writer del caller.
type DumpRepo struct {
	q Querier
}

// NewDumpRepository construye el exportador. Pasar el pool (solo lectura).
func NewDumpRepository(q Querier) *DumpRepo {
	return &DumpRepo{q: q}
}

// Dump escribe el respaldo completo en w, tabla por tabla.
func (r *DumpRepo) Dump(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "-- respaldo almacen-rma %s\nBEGIN;\n\n", time.Now().Format(time.RFC3339))
	for _, tabla := range tablasRespaldo {
		if err := r.dumpTabla(ctx, w, tabla); err != nil {
			return fmt.Errorf("dump tabla %s: %w", tabla, err)
		}
	}
	fmt.Fprint(w, "COMMIT;\n")
	return nil
}

func (r *DumpRepo) dumpTabla(ctx context.Context, w io.Writer, tabla string) error {
	rows, err := r.q.Query(ctx, "SELECT * FROM "+tabla)
	if err != nil {
		return err
	}
	defer rows.Close()

	cols := make([]string, 0, len(rows.FieldDescriptions()))
	for _, fd := range rows.FieldDescriptions() {
		cols = append(cols, fd.Name)
	}
	fmt.Fprintf(w, "-- %s\n", tabla)

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return err
		}
		literales := make([]string, 0, len(values))
		for _, v := range values {
			literales = append(literales, sqlLiteral(v))
		}
		fmt.Fprintf(w, "INSERT INTO %s (%s) VALUES (%s);\n",
			tabla, strings.Join(cols, ", "), strings.Join(literales, ", "))
	}
	if err := rows.Err(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

// sqlLiteral formatea un valor de pgx como literal SQL. Los strings
// escapan comillas simples duplicándolas.
func sqlLiteral(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case string:
		return "'" + strings.ReplaceAll(t, "'", "''") + "'"
	case []byte:
		return fmt.Sprintf(`'\x%x'`, t)
	case time.Time:
		return "'" + t.Format("2006-01-02 15:04:05.999999-07") + "'"
	case fmt.Stringer:
		return "'" + strings.ReplaceAll(t.String(), "'", "''") + "'"
	default:
		return fmt.Sprintf("%v", t)
	}
}
