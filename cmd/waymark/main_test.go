package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/serve"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	b := new(bytes.Buffer)
	cmd := rootCmd()
	cmd.SetOut(b)
	cmd.SetErr(b)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return b.String(), err
}

func TestRoutes(t *testing.T) {
	// Arrange
	t.Setenv("BASE_PATH", "")

	// Act
	out, err := run(t, "routes")

	// Assert
	require.Nil(t, err)
	require.Equal(t, " 1  /\n 2  /products\n 3  /products/{}/{}\n 4  /admin\n 5  /admin/users/{}\n 6  /admin/home\n", out)
}

func TestResolve(t *testing.T) {
	// Arrange
	t.Setenv("BASE_PATH", "shop")

	// Act
	out, err := run(t, "resolve", "/shop/products/kite/1", "/shop/admin/home", "/products")

	// Assert
	require.Nil(t, err)
	require.Contains(t, out, "✓ /shop/products/kite/1 => ShowProduct {Name:kite ID:1 Page:<nil>}")
	require.Contains(t, out, "✓ /shop/admin/home => ShowAdmin {}\n  redirected to /shop/admin")
	require.Contains(t, out, "✗ /products => InvalidRoute")
}

func TestResolveArgs(t *testing.T) {
	_, err := run(t, "resolve")
	require.NotNil(t, err)

	_, err = run(t, "resolve", "/?x=%zz")
	require.NotNil(t, err)
}

func TestPrintResolutionWithoutAction(t *testing.T) {
	// Arrange
	color.NoColor = true
	b := new(bytes.Buffer)
	u := waymark.ParsePath("/silent")

	// Act
	require.NotPanics(t, func() { printResolution(b, u, serve.Resolution{URL: u}) })

	// Assert
	require.Equal(t, "✗ /silent => nothing dispatched\n", b.String())
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.Nil(t, err)
	require.Equal(t, "dev\n", out)
}
