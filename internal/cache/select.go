package cache

// backLabel is the trailing option that cancels a deletion pick.
const backLabel = "← Back to Main Menu"

const selectTitle = "Select cached ticker to DELETE:"

// SelectForDeletion asks the operator to pick one entry of inventory.
// It returns nil without error when the operator picks the back option
// or cancels the prompt. The returned pointer refers into inventory.
//
// Callers must not pass an empty inventory.
func SelectForDeletion(p Prompter, inventory []Entry) (*Entry, error) {
	options := make([]string, 0, len(inventory)+1)
	for _, e := range inventory {
		options = append(options, e.Label())
	}
	options = append(options, backLabel)

	choice, err := p.Choose(selectTitle, options)
	if err != nil {
		return nil, err
	}
	if choice.Cancelled || choice.Index < 0 || choice.Index >= len(inventory) {
		return nil, nil
	}
	return &inventory[choice.Index], nil
}
