package noteboard

// MockNotes returns the fixed fallback dataset served when every
// acquisition strategy fails: 5 notes spanning 3 distinct users.
// A fresh copy is returned on each call so callers own the result.
func MockNotes() []Note {
	return []Note{
		{
			SequentialID: 1,
			Firstname:    "John",
			Lastname:     "Doe",
			Note:         "This is a sample note demonstrating the expected record structure",
			Date:         "2024-10-23 10:30:00",
		},
		{
			SequentialID: 2,
			Firstname:    "Jane",
			Lastname:     "Smith",
			Note:         "Another example note showing how board rows get parsed into records",
			Date:         "2024-10-23 11:15:00",
		},
		{
			SequentialID: 3,
			Firstname:    "John",
			Lastname:     "Doe",
			Note:         "John's second note about acquisition fallbacks",
			Date:         "2024-10-23 12:00:00",
		},
		{
			SequentialID: 4,
			Firstname:    "Alice",
			Lastname:     "Johnson",
			Note:         "Testing the board with multiple users",
			Date:         "2024-10-23 09:45:00",
		},
		{
			SequentialID: 5,
			Firstname:    "Jane",
			Lastname:     "Smith",
			Note:         "Working on the rendering pipeline requirements",
			Date:         "2024-10-23 14:20:00",
		},
	}
}
