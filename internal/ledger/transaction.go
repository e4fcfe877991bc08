package ledger

// GetTransactions returns the full transaction collection. A missing or
// corrupt collection reads as empty; the error reports corruption or
// substrate failure so callers can tell "no data" from "broken storage".
func (s *Store) GetTransactions() ([]Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transactions()
}

func (s *Store) transactions() ([]Transaction, error) {
	return load(s.kv, KeyTransactions, []Transaction{})
}

// SaveTransaction assigns an id and timestamps to the transaction, appends
// it to the collection and persists. The store does not validate the input;
// validation is the caller's responsibility.
func (s *Store) SaveTransaction(transaction Transaction) (Transaction, error) {
	s.mu.Lock()

	transactions, err := loadForWrite(s.kv, KeyTransactions, []Transaction{})
	if err != nil {
		s.mu.Unlock()
		return Transaction{}, err
	}

	transaction.ID = s.newID()
	transaction.CreatedAt = s.now()
	transaction.UpdatedAt = transaction.CreatedAt

	transactions = append(transactions, transaction)
	if err := persist(s.kv, KeyTransactions, transactions); err != nil {
		s.mu.Unlock()
		return Transaction{}, err
	}

	s.mu.Unlock()
	s.notify(KeyTransactions)
	return transaction, nil
}

// UpdateTransaction merges the update over the stored transaction with the
// given id and refreshes UpdatedAt. An unknown id returns (nil, nil) and
// leaves the collection unmodified.
func (s *Store) UpdateTransaction(id string, update TransactionUpdate) (*Transaction, error) {
	s.mu.Lock()

	transactions, err := loadForWrite(s.kv, KeyTransactions, []Transaction{})
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	index := -1
	for i := range transactions {
		if transactions[i].ID == id {
			index = i
			break
		}
	}

	if index == -1 {
		s.mu.Unlock()
		return nil, nil
	}

	transaction := &transactions[index]
	if update.Type != nil {
		transaction.Type = *update.Type
	}
	if update.Amount != nil {
		transaction.Amount = *update.Amount
	}
	if update.Description != nil {
		transaction.Description = *update.Description
	}
	if update.CategoryID != nil {
		transaction.CategoryID = *update.CategoryID
	}
	if update.Date != nil {
		transaction.Date = *update.Date
	}
	transaction.UpdatedAt = s.now()

	if err := persist(s.kv, KeyTransactions, transactions); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	updated := *transaction
	s.mu.Unlock()
	s.notify(KeyTransactions)
	return &updated, nil
}

// DeleteTransaction removes the transaction with the given id. Deleting an
// unknown id is a no-op, not an error.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()

	transactions, err := loadForWrite(s.kv, KeyTransactions, []Transaction{})
	if err != nil {
		s.mu.Unlock()
		return err
	}

	remaining := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if transaction.ID != id {
			remaining = append(remaining, transaction)
		}
	}

	if err := persist(s.kv, KeyTransactions, remaining); err != nil {
		s.mu.Unlock()
		return err
	}

	s.mu.Unlock()
	s.notify(KeyTransactions)
	return nil
}
