package domain

// Action is a UI event dispatched to the controller.
type Action interface {
	actionName() string
}

// LoadList is the initial page load of the markets table.
type LoadList struct{}

// RetryList re-fetches the whole markets table after a failure.
type RetryList struct{}

// SelectCoin is a click on a table row.
type SelectCoin struct {
	ID string
}

// RetryDetail re-fetches the detail panel for the coin that failed.
type RetryDetail struct {
	ID string
}

// Search is one keystroke in the search input.
type Search struct {
	Query string
}

func (LoadList) actionName() string    { return "load_list" }
func (RetryList) actionName() string   { return "retry_list" }
func (SelectCoin) actionName() string  { return "select_coin" }
func (RetryDetail) actionName() string { return "retry_detail" }
func (Search) actionName() string      { return "search" }

// ActionName returns a stable name for logging.
func ActionName(a Action) string {
	if a == nil {
		return ""
	}
	return a.actionName()
}
