package main

import "github.com/jward/shelf"

// CLIResult is the top-level JSON envelope for all non-interactive commands.
type CLIResult struct {
	Command    string `json:"command"`
	Results    any    `json:"results"`
	TotalCount *int   `json:"total_count,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CLIBook is a JSON-friendly book with its insertion index.
type CLIBook struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// CLIMember is a JSON-friendly member.
type CLIMember struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// CLISearch is a JSON-friendly title search outcome. Book is nil on a miss.
type CLISearch struct {
	Query string   `json:"query"`
	Found bool     `json:"found"`
	Book  *CLIBook `json:"book,omitempty"`
}

// CLIIssue is a JSON-friendly issue announcement.
type CLIIssue struct {
	Kind    string    `json:"kind"`
	Member  CLIMember `json:"member"`
	Title   string    `json:"title,omitempty"`
	Genre   string    `json:"genre,omitempty"`
	Message string    `json:"message"`
}

func toCLIBook(index int, b shelf.Book) CLIBook {
	return CLIBook{Index: index, Title: b.Title(), Author: b.Author(), Genre: b.Genre()}
}

func toCLISearch(res shelf.SearchResult) CLISearch {
	out := CLISearch{Query: res.Query, Found: res.Found}
	if res.Found {
		b := toCLIBook(res.Index, res.Book)
		out.Book = &b
	}
	return out
}

func toCLIIssue(iss shelf.Issue) CLIIssue {
	return CLIIssue{
		Kind:    string(iss.Kind),
		Member:  CLIMember{Name: iss.Member.Name(), ID: iss.Member.ID()},
		Title:   iss.Title,
		Genre:   iss.Genre,
		Message: iss.String(),
	}
}
