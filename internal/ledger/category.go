package ledger

// GetCategories returns both category lists. On first access the default
// set is persisted and becomes canonical; later changes to the built-in
// defaults do not retroactively apply.
func (s *Store) GetCategories() (Categories, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.categories()
}

func (s *Store) categories() (Categories, error) {
	_, found, err := s.kv.Get(KeyCategories)
	if err != nil {
		return Categories{}, err
	}

	if !found {
		seeded := defaultCategories()
		if err := persist(s.kv, KeyCategories, seeded); err != nil {
			return Categories{}, err
		}
		return seeded, nil
	}

	return load(s.kv, KeyCategories, Categories{})
}

// AddCategory assigns an id to the category and appends it to the list for
// the given type. Both lists are persisted as one record.
func (s *Store) AddCategory(transactionType TransactionType, category Category) (Category, error) {
	s.mu.Lock()

	categories, err := s.categories()
	if err != nil {
		s.mu.Unlock()
		return Category{}, err
	}

	category.ID = s.newID()
	if transactionType == TypeIncome {
		categories.Income = append(categories.Income, category)
	} else {
		categories.Expense = append(categories.Expense, category)
	}

	if err := persist(s.kv, KeyCategories, categories); err != nil {
		s.mu.Unlock()
		return Category{}, err
	}

	s.mu.Unlock()
	s.notify(KeyCategories)
	return category, nil
}
