package repository

import (
	"strconv"
	"strings"
)

// itoa shortens placeholder construction in dynamically built queries.
func itoa(n int) string {
	return strconv.Itoa(n)
}

// likePattern builds a case-insensitive substring pattern from user input.
// LIKE wildcards in the input are escaped so a query of "%" matches a
// literal percent sign, not every row; pair with ESCAPE '\'.
func likePattern(q string) string {
	q = strings.ToLower(q)
	q = strings.ReplaceAll(q, `\`, `\\`)
	q = strings.ReplaceAll(q, `%`, `\%`)
	q = strings.ReplaceAll(q, `_`, `\_`)
	return "%" + q + "%"
}
