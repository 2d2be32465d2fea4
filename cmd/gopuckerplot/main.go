/*
 * main.go, part of goconformer.
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goconformer is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//gopuckerplot draws the standard plots for one or more classified
//tables, as written by goclassify: the 2D conformational map, the
//puckering sphere projections and the conformation bar chart, next to
//each table.
//
//Usage:
//
//	gopuckerplot a.classified.dat [b.classified.dat ...]
//
//writes a_map.pdf, a_sphere.png and a_conf.png, and so on.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	chem "github.com/rmera/goconformer"
	"github.com/rmera/goconformer/confplot"
	"github.com/rmera/scu"
)

//baseName strips the table suffixes from the given name.
func baseName(name string) string {
	for _, suf := range []string{".classified.dat", ".params.dat"} {
		if strings.HasSuffix(name, suf) {
			return strings.TrimSuffix(name, suf)
		}
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: gopuckerplot table.classified.dat [more tables...]")
		os.Exit(1)
	}
	for _, name := range os.Args[1:] {
		list, err := chem.ReadTableFile(name)
		scu.QErr(err)
		base := baseName(name)
		title := filepath.Base(base)
		out := base + "_map.pdf"
		scu.QErr(confplot.SaveThetaPhiMap(list, title, out))
		fmt.Println("Saved", out)
		out = base + "_sphere.png"
		scu.QErr(confplot.SaveSphereProjection(list, title, out))
		fmt.Println("Saved", out)
		out = base + "_conf.png"
		if err := confplot.SaveConfHistogram(list, title, out); err != nil {
			//tables without conformation codes still get the other plots
			log.Printf("No conformation chart for %s: %v", name, err)
			continue
		}
		fmt.Println("Saved", out)
	}
}
