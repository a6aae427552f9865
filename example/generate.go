package main

//go:generate go run github.com/sublee/declare/cmd/declare
