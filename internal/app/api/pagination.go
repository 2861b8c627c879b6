package api

const defaultPageDelta = 10

// pageWindow is the slice of a result set addressed by a (delta, page) request.
type pageWindow struct {
	Delta    int
	Page     int
	NumPages int
	NextPage int
	Offset   int
	// Empty is set when Page lies beyond the last page.
	Empty bool
}

func paginate(total, delta, page int) pageWindow {
	if delta <= 0 {
		delta = defaultPageDelta
	}
	if page <= 0 {
		page = 1
	}
	numPages := (total + delta - 1) / delta
	if numPages < 1 {
		numPages = 1
	}
	next := 1
	if page < numPages {
		next = page + 1
	}
	return pageWindow{
		Delta:    delta,
		Page:     page,
		NumPages: numPages,
		NextPage: next,
		Offset:   (page - 1) * delta,
		Empty:    page > numPages || total == 0,
	}
}
