// Package core holds small numeric and slice helpers plus the processing
// configuration shared by the filter and analysis packages.
package core
