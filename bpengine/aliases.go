package bpengine

import "strings"

// ParseMethod resolves a method spec into a Method. Accepted forms: a
// Method value itself, an int (0=prod_sum, 1=min_sum — redirected to
// MethodMinSumLog, 2=prod_sum_log, 3=min_sum_log), or a string alias (case
// and surrounding-space insensitive). Every "min_sum"-family alias, including
// plain "ms", resolves to MethodMinSumLog: see MethodMinSum.
func ParseMethod(v interface{}) (Method, error) {
	switch t := v.(type) {
	case Method:
		return t, nil
	case int:
		switch t {
		case 0:
			return MethodProdSum, nil
		case 1:
			return MethodMinSumLog, nil
		case 2:
			return MethodProdSumLog, nil
		case 3:
			return MethodMinSumLog, nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "ps", "prod_sum", "product_sum", "prod sum":
			return MethodProdSum, nil
		case "psl", "ps_log", "product_sum_log":
			return MethodProdSumLog, nil
		case "msl", "ms_log", "min_sum_log", "minimum_sum_log":
			return MethodMinSumLog, nil
		case "ms", "min_sum", "minimum_sum", "min sum":
			return MethodMinSumLog, nil
		}
	}
	return 0, bpengineErrorf("ParseMethod", ErrInvalidBPMethod)
}

// ParseSchedule resolves a schedule spec into a Schedule. Accepted forms: a
// Schedule value itself, an int (0=parallel, 1=serial), or a string alias.
func ParseSchedule(v interface{}) (Schedule, error) {
	switch t := v.(type) {
	case Schedule:
		return t, nil
	case int:
		switch t {
		case 0:
			return Parallel, nil
		case 1:
			return Serial, nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "p", "parallel", "flooding", "fl":
			return Parallel, nil
		case "s", "serial", "sequential":
			return Serial, nil
		}
	}
	return 0, bpengineErrorf("ParseSchedule", ErrInvalidSchedule)
}
