package record_test

import (
	"github.com/katalvlaran/lvtree/record"
)

// movementInput is a root with three children, the last carrying two leaves.
const movementInput = `{
  "id": "343708ec-f679-4345-a7a9-1eb11f974c81",
  "children": [
    {"id": "dbe14fc0-aeef-4745-a4b0-41c98cbbaea8"},
    {"id": "b0862e33-81a1-4b26-b152-1f993b5c9349"},
    {
      "id": "d7582511-8d32-47d9-a38a-becceb9b88e7",
      "children": [
        {"id": "9b73a757-da9c-46c0-8ee2-52bd1160ef96"},
        {"id": "d062c7c0-ffff-4c1c-8275-168b8bfe5d39"}
      ]
    }
  ]
}`

const (
	leafToMove = "9b73a757-da9c-46c0-8ee2-52bd1160ef96"
	newHome    = "dbe14fc0-aeef-4745-a4b0-41c98cbbaea8"
	oldHome    = "d7582511-8d32-47d9-a38a-becceb9b88e7"
)

// movementOutput is movementInput after moving leafToMove under newHome.
var movementOutput = record.Record{
	ID: "343708ec-f679-4345-a7a9-1eb11f974c81",
	Children: []record.Record{
		{ID: newHome, Children: []record.Record{{ID: leafToMove}}},
		{ID: "b0862e33-81a1-4b26-b152-1f993b5c9349"},
		{ID: oldHome, Children: []record.Record{{ID: "d062c7c0-ffff-4c1c-8275-168b8bfe5d39"}}},
	},
}

// scenario is the small tree with a single payload on "z".
var scenario = record.Record{
	ID: "x",
	Children: []record.Record{
		{ID: "y"},
		{ID: "z", Data: 7},
	},
}
