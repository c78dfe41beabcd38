// Package testsupport provides fixtures and stub collaborators shared by the
// package tests: a sample page shell, sample content documents, and a
// StubLoader with controllable failures and completion order.
package testsupport
