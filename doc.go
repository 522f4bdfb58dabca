/*
Package sheets converts worksheets stored as Google Sheets (or local Excel workbooks) to lists of
records keyed by the worksheet header row.

sheets-records can be used from the command line but is really intended to be run from a cron job
to export a worksheet as JSON or TSV and to keep a timestamped log of each run in a Google Drive
folder.

sheets-records supports the following commands:

  - authorise, to authorise application access to Google Sheets and Google Drive
  - get, to download a Google Sheets worksheet as a JSON or TSV list of records
  - xlsx, to convert a worksheet in an Excel workbook to a JSON or TSV list of records
  - log-file, to write a log file to a Google Drive folder
  - timestamp, to print the current local time in the log file name format
  - version, to display the current version
*/
package sheets
