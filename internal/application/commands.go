package application

type SayCommand struct {
	Utterances []string
}
