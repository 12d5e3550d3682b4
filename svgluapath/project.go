package main

type Project struct {
	// source svg icon dir, used when no files are given on the command line
	IconDir string `json:"icondir"`

	// source file extension
	Ext string `json:"ext"`
}

var DefaultProject = Project{
	IconDir: "icons",
	Ext:     ".svg",
}
