package mocks

//go:generate mockgen -destination=reader.go -package=mocks io Reader
