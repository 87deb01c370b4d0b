// Package main provides the entry point of portfolio-admin.
// It serves a personal portfolio website (projects, insights, services and
// hero images) together with an admin area to manage that content, a JSON
// API with live snapshot streams and a contact form backed by EmailJS.
// Content is stored through gorm in MySQL, PostgreSQL or SQLite.
package main
