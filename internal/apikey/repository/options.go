package repository

type CreateOptions struct {
	Value string
}

type ListOptions struct {
	Limit  int
	Offset int
}
