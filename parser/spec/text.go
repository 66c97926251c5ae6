package spec

// CharacterData is https:domspec.whatwg.org/#characterdata
type CharacterData struct {
	Data string
}

// https:domspec.whatwg.org/#text
type Text struct {
	*CharacterData
}

func NewText(data string) *Text {
	return &Text{
		CharacterData: &CharacterData{
			Data: data,
		}}
}
