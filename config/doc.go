// Package config loads graphsearch settings from a YAML file.
//
// Every field has a default (see Default), so a file only needs the keys it
// changes:
//
//	capacity: 10
//	prompt: "Enter a command: "
//	color: auto        # auto | always | never
//	log:
//	  level: info      # debug | info | warn | error
//	  format: text     # text | json
//	telemetry:
//	  output: ""       # file receiving stdout trace/metric exports; empty disables
package config
