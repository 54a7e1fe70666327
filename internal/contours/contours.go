package contours

// New builds the production Contours implementation over arrows. Callers
// that need an independent equality oracle for testing should use
// NewBruteForce instead.
func New(arrows []Arrow) Contours {
	return NewSorted(arrows)
}
