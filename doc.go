// Package expense records personal expenses and tracks them against a
// savings target.
//
// The core functionalities include:
//   - Records: immutable expense entries (description, amount, day, category).
//   - Ledger: an ordered list of records with stable sorts, inclusive date
//     range filters, totals, per category totals and savings progress.
//   - Persistence: a human readable, line oriented text format, one record
//     per line, that can be saved, loaded or appended to.
//   - Import: conversion of JSON exports into records using JSONPath.
//
// This package serves as the foundational logic for the `xps` command-line
// tool and its interactive shell.
package expense
