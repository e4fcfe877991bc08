package ledger

// GetSettings returns the persisted settings, or the built-in defaults when
// nothing has been persisted yet. Reading never writes the defaults; the
// record is only created by the first UpdateSettings call.
func (s *Store) GetSettings() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings()
}

func (s *Store) settings() (Settings, error) {
	return load(s.kv, KeySettings, DefaultSettings())
}

// UpdateSettings shallow-merges the update onto the current settings and
// persists the result. BudgetLimits, when present in the update, replaces
// the stored map wholesale; callers who want to change a single limit must
// read-modify-write the whole map.
func (s *Store) UpdateSettings(update SettingsUpdate) (Settings, error) {
	s.mu.Lock()

	settings, err := loadForWrite(s.kv, KeySettings, DefaultSettings())
	if err != nil {
		s.mu.Unlock()
		return Settings{}, err
	}

	if update.Currency != nil {
		settings.Currency = *update.Currency
	}
	if update.Theme != nil {
		settings.Theme = *update.Theme
	}
	if update.Notifications != nil {
		settings.Notifications = *update.Notifications
	}
	if update.BudgetAlerts != nil {
		settings.BudgetAlerts = *update.BudgetAlerts
	}
	if update.BudgetLimits != nil {
		settings.BudgetLimits = update.BudgetLimits
	}

	if err := persist(s.kv, KeySettings, settings); err != nil {
		s.mu.Unlock()
		return Settings{}, err
	}

	s.mu.Unlock()
	s.notify(KeySettings)
	return settings, nil
}
