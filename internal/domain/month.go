package domain

import (
	"fmt"
	"strconv"
	"time"
)

// MonthToken derives the month component of a sorted destination path
// from the raw month string of a capture date. English month names come
// from the fixed time.Month table.
//
//	nameMonths=false                  -> "3"
//	nameMonths=true                   -> "March"
//	nameMonths=true, orderedMonths    -> "03_March"
func MonthToken(month string, nameMonths, orderedMonths bool) (string, error) {
	n, err := strconv.Atoi(month)
	if err != nil {
		return "", fmt.Errorf("unparsable month %q: %w", month, err)
	}
	if n < 1 || n > 12 {
		return "", fmt.Errorf("month %d out of range", n)
	}
	if !nameMonths {
		return strconv.Itoa(n), nil
	}
	name := time.Month(n).String()
	if orderedMonths {
		return fmt.Sprintf("%02d_%s", n, name), nil
	}
	return name, nil
}
