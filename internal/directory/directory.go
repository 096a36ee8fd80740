// Package directory implements the in-memory view logic of the public
// supplier directory: filtering, sorting, and paging an already-fetched
// supplier list without further queries.
package directory

import (
	"sort"
	"strings"

	"supplierhub/internal/models"
)

// DefaultPageSize is the fixed page size of the directory view.
const DefaultPageSize = 9

// SortMode selects how the visible list is ordered.
type SortMode string

const (
	// SortByName orders alphabetically by company name, ascending.
	SortByName SortMode = "name"
	// SortByYear orders by established year, descending; suppliers
	// without a year sort last.
	SortByYear SortMode = "year"
	// SortByEmployees orders by company-size bucket, largest first;
	// suppliers without a bucket sort last.
	SortByEmployees SortMode = "employees"
)

// employeeRank maps each company-size bucket to an ordinal; an unknown or
// missing bucket ranks 0 and therefore sorts last under SortByEmployees.
var employeeRank = map[string]int{
	"1-50":     1,
	"51-200":   2,
	"201-500":  3,
	"501-1000": 4,
	"1000+":    5,
}

// ParseSortMode maps a query-string value onto a SortMode, defaulting to
// SortByName for anything unrecognized.
func ParseSortMode(value string) SortMode {
	switch SortMode(value) {
	case SortByYear:
		return SortByYear
	case SortByEmployees:
		return SortByEmployees
	default:
		return SortByName
	}
}

// Filter returns the suppliers matching the search term and country. The
// term matches case-insensitively against company name, description, and
// main products; the country must match the address country exactly, with
// an empty country matching everything.
func Filter(suppliers []models.Supplier, search, country string) []models.Supplier {
	term := strings.ToLower(strings.TrimSpace(search))
	matched := make([]models.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if country != "" && s.Address.Country != country {
			continue
		}
		if term != "" && !matchesTerm(&s, term) {
			continue
		}
		matched = append(matched, s)
	}
	return matched
}

func matchesTerm(s *models.Supplier, term string) bool {
	if strings.Contains(strings.ToLower(s.CompanyName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Description), term) {
		return true
	}
	for _, p := range s.MainProducts {
		if strings.Contains(strings.ToLower(p), term) {
			return true
		}
	}
	return false
}

// Sort orders suppliers in place according to the given mode.
func Sort(suppliers []models.Supplier, mode SortMode) {
	switch mode {
	case SortByYear:
		sort.SliceStable(suppliers, func(i, j int) bool {
			return suppliers[i].EstablishedYear > suppliers[j].EstablishedYear
		})
	case SortByEmployees:
		sort.SliceStable(suppliers, func(i, j int) bool {
			return employeeRank[suppliers[i].EmployeeCount] > employeeRank[suppliers[j].EmployeeCount]
		})
	default:
		sort.SliceStable(suppliers, func(i, j int) bool {
			return suppliers[i].CompanyName < suppliers[j].CompanyName
		})
	}
}

// Paginate slices one page out of the list and reports the total page
// count. A page beyond the last yields an empty slice, not an error.
func Paginate(suppliers []models.Supplier, page, pageSize int) ([]models.Supplier, int) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	totalPages := (len(suppliers) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= len(suppliers) {
		return []models.Supplier{}, totalPages
	}
	end := start + pageSize
	if end > len(suppliers) {
		end = len(suppliers)
	}
	return suppliers[start:end], totalPages
}

// Apply runs filter, sort, and paginate in one step; the output depends
// only on the inputs.
func Apply(suppliers []models.Supplier, search, country string, mode SortMode, page, pageSize int) ([]models.Supplier, int) {
	matched := Filter(suppliers, search, country)
	Sort(matched, mode)
	return Paginate(matched, page, pageSize)
}

// View holds the interactive state of the directory page. Changing the
// search term or country filter resets to page one; changing only the
// sort mode keeps the current page.
type View struct {
	suppliers []models.Supplier
	search    string
	country   string
	sortMode  SortMode
	page      int
	pageSize  int
}

// NewView creates a view over a fetched supplier list.
func NewView(suppliers []models.Supplier) *View {
	return &View{
		suppliers: suppliers,
		sortMode:  SortByName,
		page:      1,
		pageSize:  DefaultPageSize,
	}
}

// SetSearch updates the search term and resets to the first page when the
// term actually changed.
func (v *View) SetSearch(term string) {
	if v.search != term {
		v.search = term
		v.page = 1
	}
}

// SetCountry updates the country filter and resets to the first page when
// the filter actually changed.
func (v *View) SetCountry(country string) {
	if v.country != country {
		v.country = country
		v.page = 1
	}
}

// SetSortMode changes the ordering without touching the current page.
func (v *View) SetSortMode(mode SortMode) {
	v.sortMode = mode
}

// SetPage moves to the given page; values below one clamp to one.
func (v *View) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

// Page returns the current page number.
func (v *View) Page() int {
	return v.page
}

// Visible returns the suppliers for the current page plus the total page
// count.
func (v *View) Visible() ([]models.Supplier, int) {
	return Apply(v.suppliers, v.search, v.country, v.sortMode, v.page, v.pageSize)
}
