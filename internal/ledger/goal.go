package ledger

// GetGoals returns the full goal collection.
func (s *Store) GetGoals() ([]Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.goals()
}

func (s *Store) goals() ([]Goal, error) {
	return load(s.kv, KeyGoals, []Goal{})
}

// SaveGoal assigns an id and creation timestamp to the goal, appends it to
// the collection and persists.
func (s *Store) SaveGoal(goal Goal) (Goal, error) {
	s.mu.Lock()

	goals, err := loadForWrite(s.kv, KeyGoals, []Goal{})
	if err != nil {
		s.mu.Unlock()
		return Goal{}, err
	}

	goal.ID = s.newID()
	goal.CreatedAt = s.now()

	goals = append(goals, goal)
	if err := persist(s.kv, KeyGoals, goals); err != nil {
		s.mu.Unlock()
		return Goal{}, err
	}

	s.mu.Unlock()
	s.notify(KeyGoals)
	return goal, nil
}

// UpdateGoal merges the update over the stored goal with the given id. An
// unknown id returns (nil, nil) and leaves the collection unmodified.
func (s *Store) UpdateGoal(id string, update GoalUpdate) (*Goal, error) {
	s.mu.Lock()

	goals, err := loadForWrite(s.kv, KeyGoals, []Goal{})
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	index := -1
	for i := range goals {
		if goals[i].ID == id {
			index = i
			break
		}
	}

	if index == -1 {
		s.mu.Unlock()
		return nil, nil
	}

	goal := &goals[index]
	if update.Title != nil {
		goal.Title = *update.Title
	}
	if update.TargetAmount != nil {
		goal.TargetAmount = *update.TargetAmount
	}
	if update.TargetDate != nil {
		goal.TargetDate = *update.TargetDate
	}
	if update.Description != nil {
		goal.Description = *update.Description
	}
	if update.Status != nil {
		goal.Status = *update.Status
	}

	if err := persist(s.kv, KeyGoals, goals); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	updated := *goal
	s.mu.Unlock()
	s.notify(KeyGoals)
	return &updated, nil
}

// ReplaceGoals overwrites the whole goal collection. There is no
// delete-by-id operation for goals; deletion is done by filtering the
// collection and writing it back through this method.
func (s *Store) ReplaceGoals(goals []Goal) error {
	s.mu.Lock()

	if goals == nil {
		goals = []Goal{}
	}

	if err := persist(s.kv, KeyGoals, goals); err != nil {
		s.mu.Unlock()
		return err
	}

	s.mu.Unlock()
	s.notify(KeyGoals)
	return nil
}
