package flatmap

func validateCount(want, got int) error {
	if want < 0 || want != got {
		return &WrongCountError{Want: want, Got: got}
	}
	return nil
}

// validateUnique compares every pair once and reports the first collision
// in (i, j) order. Quadratic, which is fine at the sizes this package targets.
func validateUnique[K comparable](n int, keyAt func(int) K) error {
	for i := 0; i < n; i++ {
		ki := keyAt(i)
		for j := i + 1; j < n; j++ {
			if ki == keyAt(j) {
				return &DuplicateKeyError{Key: ki, First: i, Second: j}
			}
		}
	}
	return nil
}

func validateEntries[K comparable, V any](n int, entries []Entry[K, V]) error {
	if err := validateCount(n, len(entries)); err != nil {
		return err
	}
	return validateUnique(len(entries), func(i int) K { return entries[i].Key })
}

func validateKeys[K comparable](n int, keys []K) error {
	if err := validateCount(n, len(keys)); err != nil {
		return err
	}
	return validateUnique(len(keys), func(i int) K { return keys[i] })
}

// assertTrusted is the debug-build check behind the unchecked constructors.
// It compiles to nothing unless the flatmapdebug tag is set.
func assertTrusted[K comparable](n int, keyAt func(int) K) {
	if !debugChecks {
		return
	}
	if err := validateUnique(n, keyAt); err != nil {
		panic("flatmap: unchecked construction precondition violated: " + err.Error())
	}
}
