package catalog

// ActivityDefinition is a single entry in the seeded activity catalog.
type ActivityDefinition struct {
	Category      Category `json:"category"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	EstimatedTime int      `json:"estimated_time"` // minutes
}

// activities is the canonical assessment catalog: five entries per
// category, ordered by category. Keep titles stable because stored ratings
// reference them.
var activities = []ActivityDefinition{
	// Organization
	{CategoryOrganization, "Clear your desk completely", "Remove everything from your desk, wipe it down, and put back only what you use daily", 20},
	{CategoryOrganization, "Sort one overflowing drawer", "Empty a junk drawer, discard what you don't need, and give the rest a fixed place", 25},
	{CategoryOrganization, "Plan tomorrow in writing", "Write down tomorrow's three most important tasks before ending today", 10},
	{CategoryOrganization, "Archive loose papers", "Collect scattered documents into labeled folders or the recycling bin", 30},
	{CategoryOrganization, "Empty your bag or backpack", "Take everything out, throw away the debris, and repack deliberately", 15},

	// Administrative
	{CategoryAdministrative, "Answer a postponed email", "Reply to the message you have been re-reading and deferring for days", 15},
	{CategoryAdministrative, "Make an appointment call", "Call to schedule the appointment you keep meaning to book", 10},
	{CategoryAdministrative, "Fill out a pending form", "Complete the application, claim, or registration sitting in your to-do pile", 30},
	{CategoryAdministrative, "Renew an expiring document", "Start the renewal for an ID, license, subscription, or contract", 35},
	{CategoryAdministrative, "File a complaint or dispute", "Write to customer service about the issue you decided to let slide", 25},

	// Social
	{CategorySocial, "Call a relative you owe a call", "Phone the family member you have been meaning to catch up with", 20},
	{CategorySocial, "Send a difficult apology", "Reach out to someone after a disagreement and clear the air", 15},
	{CategorySocial, "Ask someone for help", "Explicitly request support with something you have been struggling through alone", 10},
	{CategorySocial, "Decline an unwanted commitment", "Say no to an invitation or request you would otherwise resentfully accept", 10},
	{CategorySocial, "Reconnect with an old friend", "Write to a friend you lost touch with and suggest meeting", 15},

	// Digital
	{CategoryDigital, "Reach inbox zero", "Process every email in your inbox: reply, archive, or delete", 45},
	{CategoryDigital, "Unsubscribe from newsletters", "Go through promotional email and unsubscribe from everything you never read", 20},
	{CategoryDigital, "Clean up your desktop and downloads", "Delete or file every stray file on your desktop and in downloads", 25},
	{CategoryDigital, "Back up your devices", "Run a full backup of your phone and computer, verify it completed", 30},
	{CategoryDigital, "Review app permissions and accounts", "Delete unused apps and close accounts you no longer want", 35},

	// Creative
	{CategoryCreative, "Write a rough first page", "Draft one page of the project you keep postponing, quality irrelevant", 30},
	{CategoryCreative, "Sketch without erasing", "Fill one page with drawings and resist fixing anything", 20},
	{CategoryCreative, "Share unfinished work", "Show a draft to someone before it feels ready", 10},
	{CategoryCreative, "Practice an instrument badly", "Play or sing for twenty minutes with no goal except repetition", 20},
	{CategoryCreative, "Start the project you researched", "Stop preparing and take the first concrete step on a long-planned idea", 40},

	// Maintenance
	{CategoryMaintenance, "Deep clean one room", "Move the furniture, get the corners, finish completely", 60},
	{CategoryMaintenance, "Fix the small broken thing", "Repair the loose handle, squeaky door, or dead bulb you walk past daily", 25},
	{CategoryMaintenance, "Clean the refrigerator", "Empty it, discard expired food, and wipe the shelves", 35},
	{CategoryMaintenance, "Do the full laundry cycle", "Wash, dry, fold, and put away in one uninterrupted pass", 45},
	{CategoryMaintenance, "Clear out expired items", "Check medicine cabinet and pantry for expired products and dispose of them", 20},

	// Personal
	{CategoryPersonal, "Wake up at your target time", "Get out of bed at the time you claim you want to, no snooze", 5},
	{CategoryPersonal, "Sit with boredom", "Spend fifteen minutes with no phone, screen, book, or task", 15},
	{CategoryPersonal, "Write the honest journal entry", "Put the thing you avoid thinking about into words on paper", 20},
	{CategoryPersonal, "Have the postponed conversation", "Raise the topic you have been avoiding with the person it concerns", 30},
	{CategoryPersonal, "Take a cold shower", "End your shower with sixty seconds of cold water", 10},

	// Financial
	{CategoryFinancial, "Review last month's spending", "Go through every transaction and categorize where the money went", 30},
	{CategoryFinancial, "Check all account balances", "Open every bank, card, and loan account and write down the totals", 15},
	{CategoryFinancial, "Cancel unused subscriptions", "Find recurring charges you forgot about and cancel them", 25},
	{CategoryFinancial, "Compare insurance or utility rates", "Get quotes for one recurring bill and switch if it saves money", 40},
	{CategoryFinancial, "Set up an automatic transfer", "Automate a monthly transfer to savings, however small", 15},

	// Health
	{CategoryHealth, "Book the overdue checkup", "Schedule the dental, medical, or eye appointment you keep deferring", 10},
	{CategoryHealth, "Exercise before breakfast", "Do thirty minutes of deliberate movement before your first meal", 30},
	{CategoryHealth, "Prepare a day of real meals", "Cook ahead so tomorrow has no excuse for takeout", 50},
	{CategoryHealth, "Stretch for fifteen minutes", "Work through a full stretching routine slowly and completely", 15},
	{CategoryHealth, "Go to bed an hour early", "Start your wind-down sixty minutes ahead of your usual time", 60},

	// Learning
	{CategoryLearning, "Study the hard chapter", "Work through the section of your course or book you keep skipping", 45},
	{CategoryLearning, "Practice the weak skill", "Drill the part of a skill you are worst at instead of the comfortable parts", 30},
	{CategoryLearning, "Watch a lecture with notes", "Take structured notes on educational material instead of passive viewing", 40},
	{CategoryLearning, "Teach someone what you learned", "Explain a recent topic to another person until they understand it", 20},
	{CategoryLearning, "Do practice problems untimed", "Solve exercises without looking at solutions until you are finished", 35},
}

// Activities returns the full catalog in assessment order.
func Activities() []ActivityDefinition {
	out := make([]ActivityDefinition, len(activities))
	copy(out, activities)
	return out
}

// Size returns the number of catalog entries.
func Size() int {
	return len(activities)
}

// ByCategory returns the catalog entries for a category, in catalog order.
func ByCategory(c Category) []ActivityDefinition {
	var out []ActivityDefinition
	for _, def := range activities {
		if def.Category == c {
			out = append(out, def)
		}
	}
	return out
}
