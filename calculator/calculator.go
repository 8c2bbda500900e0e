// Package calculator evaluates the bot's calc command: plain arithmetic with
// a small math vocabulary, tolerant of human number formatting.
package calculator

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/leekchan/accounting"
)

var ErrBadExpression = errors.New("bad expression")

var mathEnv = map[string]interface{}{
	"pi":    math.Pi,
	"e":     math.E,
	"phi":   (1 + math.Sqrt(5)) / 2,
	"sqrt":  func(x float64) float64 { return math.Sqrt(x) },
	"cbrt":  func(x float64) float64 { return math.Cbrt(x) },
	"abs":   func(x float64) float64 { return math.Abs(x) },
	"log":   func(x float64) float64 { return math.Log(x) },
	"log10": func(x float64) float64 { return math.Log10(x) },
	"log2":  func(x float64) float64 { return math.Log2(x) },
	"exp":   func(x float64) float64 { return math.Exp(x) },
	"pow":   func(base, exp float64) float64 { return math.Pow(base, exp) },
	"sin":   func(x float64) float64 { return math.Sin(x) },
	"cos":   func(x float64) float64 { return math.Cos(x) },
	"tan":   func(x float64) float64 { return math.Tan(x) },
	"asin":  func(x float64) float64 { return math.Asin(x) },
	"acos":  func(x float64) float64 { return math.Acos(x) },
	"atan":  func(x float64) float64 { return math.Atan(x) },
	"ceil":  func(x float64) float64 { return math.Ceil(x) },
	"floor": func(x float64) float64 { return math.Floor(x) },
	"round": func(x float64) float64 { return math.Round(x) },
	"min":   func(x, y float64) float64 { return math.Min(x, y) },
	"max":   func(x, y float64) float64 { return math.Max(x, y) },
	"mod":   func(x, y float64) float64 { return math.Mod(x, y) },
	"fact": func(n int) (int, error) {
		if n < 0 {
			return 0, fmt.Errorf("factorial undefined for negative numbers")
		}
		if n > 20 {
			return 0, fmt.Errorf("factorial argument too large")
		}
		res := 1
		for i := 2; i <= n; i++ {
			res *= i
		}
		return res, nil
	},
}

var (
	numberRegex = regexp.MustCompile(`[0-9]+(?:[0-9\s ,.]*[0-9])?`)
	digitsRegex = regexp.MustCompile(`^\d+$`)
)

// normalizeNumberString rewrites human-typed numbers into expr syntax. It
// strips spaces and resolves the dot/comma ambiguity: whichever separator
// comes last is the decimal point, a lone comma before 1-3 trailing digits is
// a decimal comma, everything else is grouping.
func normalizeNumberString(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	dotIdx := strings.LastIndex(s, ".")
	commaIdx := strings.LastIndex(s, ",")

	switch {
	case dotIdx != -1 && commaIdx != -1:
		if commaIdx > dotIdx {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case commaIdx != -1:
		parts := strings.Split(s, ",")
		last := parts[len(parts)-1]
		if strings.Count(s, ",") == 1 && len(last) >= 1 && len(last) <= 3 && digitsRegex.MatchString(last) {
			s = parts[0] + "." + last
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}

func preprocess(query string) string {
	processed := strings.ReplaceAll(query, "%", "/100.0")
	return numberRegex.ReplaceAllStringFunc(processed, normalizeNumberString)
}

// Evaluate runs one arithmetic expression and formats the result with space
// grouping, so large numbers stay readable in chat.
func Evaluate(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", ErrBadExpression
	}

	program, err := expr.Compile(preprocess(trimmed), expr.Env(mathEnv))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadExpression, err)
	}
	output, err := expr.Run(program, mathEnv)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadExpression, err)
	}

	switch v := output.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("%w: result is not finite", ErrBadExpression)
		}
		s := accounting.FormatNumberFloat64(v, 8, " ", ".")
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
		return s, nil
	case int:
		return accounting.FormatNumberInt(v, 0, " ", "."), nil
	case int64:
		return accounting.FormatNumber(v, 0, " ", "."), nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	}
	return "", fmt.Errorf("%w: unsupported result type", ErrBadExpression)
}
